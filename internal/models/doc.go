// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package models defines the shared data types for the discovery pipeline:
// venues, events, act profiles, route analyses, and the API response
// envelope. Types in this package carry no behavior beyond small
// validation helpers; all pipeline logic lives in the packages that
// consume them.
package models
