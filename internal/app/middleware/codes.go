package middleware

// This file is kept for reference; the mapping itself lives in domain
// (GetHTTPStatus / GetErrorLabel).

// HTTP status codes per error category:
// 200 - OK
// 404 - "Api Rest Not Found" (unregistered route)
// 500 - "Division by zero"
// 500 - "Number Format not valid"
// 500 - "User or role not found" (missing user, nil reference, serialization failure)
