// Package messages is an example protocol generated by msgc from
// schema.msg.
package messages

//go:generate go run github.com/roach88/msgc/cmd/msgc generate schema.msg -o messages_gen.go --package messages --force
