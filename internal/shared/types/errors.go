package types

import "errors"

var (
	ErrUpstreamNotConfigured = errors.New("no upstream monitoring source configured; set upstream_url in the config file or NETOPS_UPSTREAM_URL")
	ErrEmptyReport           = errors.New("live pipeline produced an empty report")
)
