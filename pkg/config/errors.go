package config

import "golang.org/x/xerrors"

var (
	// ErrInvalid is returned for out-of-range settings
	ErrInvalid = xerrors.New("config: invalid setting")

	// ErrUnknownName is returned for names of strategies, kernels or sequences that do not exist
	ErrUnknownName = xerrors.New("config: unknown name")
)
