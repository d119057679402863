package client

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/medianest/internal/common"
)

// StoreError is a non-2xx answer from the media store.
type StoreError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StoreError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s failed: HTTP status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s failed: HTTP status %d: %s", e.Op, e.StatusCode, body)
}

func (e *StoreError) Unwrap() error {
	return common.ErrStoreRejection
}
