package contextkeys

// Custom type so context keys cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB
// (connection pool or transaction) is stored in the context.
const DBContextKey = contextKey("db")
