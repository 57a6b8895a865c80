// Package domain contains the core domain entities shared by the checker and
// its output: the selector checks and the report produced from them. These
// types are free of parsing and I/O concerns.
package domain
