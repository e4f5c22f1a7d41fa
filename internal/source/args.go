package source

import (
	"fmt"
	"strconv"
)

// ParseCount validates the optional command-line count argument.
// The argument must be a whole number of at least MinPoints.
func ParseCount(arg string) (int, error) {
	count, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, arg)
	}

	if count < MinPoints {
		return 0, fmt.Errorf("%w: the number of locations has to be at least %d, got %d",
			ErrInvalidArgument, MinPoints, count)
	}

	return count, nil
}
