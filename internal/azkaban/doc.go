// Package azkaban is a thin client for the Azkaban web API.
//
// Three endpoints are used, always in the same order: session login on the
// root path, project zip upload on /manager, and flow execution on
// /executor. Responses are JSON; the error field of the decoded body is the
// success/failure contract, never a substring scan of the raw text. The raw
// body is still carried inside returned errors so users can debug scheduler
// rejections directly.
//
// Session tokens are opaque and short-lived. The client never caches them;
// callers request a fresh login per operation.
package azkaban
