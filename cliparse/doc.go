// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags win over environment variables; everything has a workable
default except the Apple Music credentials, which are optional and
simply disable playlist export when absent.

	cfg, err := cliparse.ParseFlags(os.Args[1:])

See the main package documentation for the full list of settings.
*/
package cliparse
