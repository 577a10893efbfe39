// Package headers sets common headers on provider HTTP requests.
package headers

import "net/http"

func SetUserAgent(request *http.Request) {
	request.Header.Set("User-Agent", "ddnsc (dynamic DNS client)")
}

func SetContentType(request *http.Request, contentType string) {
	request.Header.Set("Content-Type", contentType)
}

func SetAccept(request *http.Request, accept string) {
	request.Header.Set("Accept", accept)
}

func SetAuthBearer(request *http.Request, token string) {
	request.Header.Set("Authorization", "Bearer "+token)
}
