package renderer

import "errors"

var (
	ErrNoCaster    = errors.New("renderer: no ray caster attached")
	ErrNoCamera    = errors.New("renderer: no camera defined")
	ErrNoStrategy  = errors.New("renderer: no sampling strategy defined")
	ErrEmptyRegion = errors.New("renderer: render region is empty")
	ErrInterrupted = errors.New("renderer: interrupted while rendering")
)
