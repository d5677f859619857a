// Package middleware groups the HTTP middleware of the serve command.
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a unique ray id per request, stored in the context for logging and
//     echoed in the X-Ray-ID response header.
package middleware
