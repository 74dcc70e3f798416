package cuckoofilter

import "errors"

// ErrUnsupportedProfile is returned by New when (bucketSize, fpBits)
// isn't one of the five packing layouts bitpack.NewProfile accepts.
var ErrUnsupportedProfile = errors.New("cuckoofilter: unsupported (bucketSize, fpBits) profile")
