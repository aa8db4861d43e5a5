// Package endpoints holds one binding per API operation.
//
// Bindings are named Verb+Resource (CreateInvoice, AdvanceTestClock,
// UpcomingLinesInvoice). Each is constructed with the operation's required
// inputs, takes optional parameters through chained setters where the last
// call wins, and is executed with Send (blocking) or SendAsync. List bindings
// add Paginate.
//
// Optional parameters are absent until their setter is called, and absent
// parameters never reach the wire. Setting a string to "" or a slice to an
// empty non-nil slice sends an empty value, which the server reads as "clear
// this field".
//
// Sending never mutates a binding: Build snapshots the parameters, so a
// binding can be sent repeatedly or shared between goroutines once built.
package endpoints
