package repository

import "github.com/alexanderramin/xpoint/internal/domain"

// ErrNotFound is returned (wrapped) when a row lookup by ID finds nothing.
var ErrNotFound = domain.ErrNotFound
