// Package drive is a minimal Google Drive v3 client covering the file
// exchange surface of the application: listing, download (including export of
// native Google document formats), multipart upload, and the OAuth helpers it
// fronts from the google package.
//
// Every operation is a single request/response exchange. There are no
// retries, no caching, and no state carried between calls beyond the access
// token the caller supplies, so a Client is safe for concurrent use. Failures
// map onto a closed set of error kinds (see Kind) allowing callers to branch
// without matching message strings.
package drive
