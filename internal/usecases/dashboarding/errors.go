package dashboarding

import "fmt"

// DataError reports a collection that could not be loaded from the record store.
type DataError struct {
	Collection string
	Err        error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
