// Package api handles incoming HTTP requests, request validation and response
// formatting. It acts as an adapter between external clients and the task
// service, translating HTTP concerns to business operations and mapping
// service errors back onto status codes and safe client messages.
package api
