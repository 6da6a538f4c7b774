package taxonomy

import "errors"

var (
	errOddReservedRegions = errors.New("taxonomy: reserved regions word count is not even")
	errUnimplementedDecode = errors.New("taxonomy: property decoder not implemented for this tag")
	errShortPropertyData   = errors.New("taxonomy: not enough response words to decode property")
)
