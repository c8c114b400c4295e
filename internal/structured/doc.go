// Package structured turns unstructured document text into typed invoice
// fields by prompting a chat-completion model.
//
// Model output is treated as untrusted: responses are parsed tolerantly
// (code fences and surrounding prose are stripped) and anything that does not
// decode into the expected shape is reported as absence rather than an error.
package structured
