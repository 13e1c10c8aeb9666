// Package namesource provides ports.NameSource adapters: command-line
// arguments, line-oriented text, YAML documents and JSON documents queried
// with a JSONPath expression.
package namesource
