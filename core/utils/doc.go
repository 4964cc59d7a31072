// Package utils provides small helpers shared by the features: input cleaning
// (trim and truncate), note concatenation, LIKE escaping and lenient query
// parameter parsing.
package utils
