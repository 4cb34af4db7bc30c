package api

// handle for the test package, not part of the api
var DecodeOptionalJsonBody = decodeOptionalJsonBody
