package domain

import "errors"

var ErrNameRequired = errors.New("dependency name is required")
var ErrInvalidName = errors.New("dependency name must not contain path separators")
var ErrURLRequired = errors.New("dependency url is required")
var ErrInvalidRevision = errors.New("pinned revision must be a full hex object id")
var ErrDuplicateName = errors.New("dependency names must be unique")
var ErrVerificationMismatch = errors.New("post-sync verification mismatch")
