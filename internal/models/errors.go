package models

import "errors"

var (
	// ErrInvalidInput - некорректные поля сигнала, сигнал не сохраняется
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyText - классификатору нечего оценивать
	ErrEmptyText = errors.New("empty text")
	// ErrInvalidCoordinate - координаты вне допустимого диапазона
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	// ErrAggregationInProgress - прогон агрегации уже выполняется
	ErrAggregationInProgress = errors.New("aggregation already in progress")
)
