package store

import "errors"

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrCommodityExists = errors.New("commodity already exists")
	ErrRecordNotFound  = errors.New("record not found")
	ErrAccountInUse    = errors.New("account has children or postings")
)
