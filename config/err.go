package config

import (
	"errors"

	"github.com/ezrec/sscd/translate"
)

var f = translate.From

var (
	ErrConfigType  = errors.New(f("wrong type"))
	ErrConfigValue = errors.New(f("invalid value"))
)

// ErrConfig locates a configuration error.
type ErrConfig struct {
	Path string // Configuration file name.
	Name string // Setting name, if known.
	Err  error
}

func (err *ErrConfig) Error() string {
	if len(err.Name) == 0 {
		return f("%v: %v", err.Path, err.Err)
	}
	return f("%v: %v: %v", err.Path, err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
