package syntax

import "fmt"

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}
