// Package utils provides common utility functions for the pharmacist tool.
// It includes helper functions for type conversion of loosely typed JSON
// values and other shared logic that doesn't fit into domain-specific
// packages.
package utils
