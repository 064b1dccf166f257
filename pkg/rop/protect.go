package rop

import "github.com/ib-77/results/pkg/rop/errs"

// Protect runs f and converts a panic escaping from it into an exception
// error. It returns the zero errs.Error when f completes normally.
//
// This is the single place where the library recovers panics; every
// combinator invoking caller code goes through it.
func Protect(f func()) (err errs.Error) {
	defer func() {
		if p := recover(); p != nil {
			err = errs.FromPanic(p)
			log.Debugw("recovered panic", "kind", err.Kind(), "error", err.Description())
		}
	}()

	f()
	return errs.Error{}
}

// ProtectErr is Protect for functions returning an error: a returned error
// and a panic both come back as an errs.Error. The returned error is
// converted inside the protected call since its methods are caller code too.
func ProtectErr(f func() error) errs.Error {
	var converted errs.Error
	if err := Protect(func() { converted = errs.From(f()) }); !err.IsZero() {
		return err
	}
	return converted
}
