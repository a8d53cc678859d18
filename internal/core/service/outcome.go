package service

import "github.com/rs/zerolog"

// Stores follow one error contract:
//
//   - read paths (list and lookup fetches) log the failure, settle their
//     loading flag and return nothing, so screens keep showing the last
//     good data;
//   - write paths (create, update, delete, status) log the failure and
//     return the backend error unchanged so the caller can show it.
//
// The dashboard is the one read path that also returns its error.

// swallow records a read failure.
func swallow(log zerolog.Logger, op string, err error) {
	log.Error().Err(err).Str("operation", op).Msg("read failed, keeping previous state")
}

// surface records a write failure and hands the error back verbatim.
func surface(log zerolog.Logger, op string, err error) error {
	log.Error().Err(err).Str("operation", op).Msg("write failed")
	return err
}
