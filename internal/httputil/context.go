package httputil

// ContextURL is the key of the API base URL in the gin context.
const ContextURL = "apiURL"
