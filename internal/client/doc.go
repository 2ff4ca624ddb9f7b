// Package client drives a full end-to-end exercise of a running
// go-auth-keeper server through the [adapter.ServerAdapter] transport.
//
// The flow covers the whole account lifecycle: registration, duplicate
// registration, login failure, login, profile access, logout, password
// reset, and re-login with the new password. It is used by the authcli
// binary as a deployment smoke check.
package client
