// Package usermeta persists dashboard data the way WordPress does: one users table
// and a key/value usermeta table, both under the configured table prefix.
//
// Features never talk to gorm directly. They store their documents JSON-encoded
// under a meta key through Repository.GetJSON and UpdateJSON, which keeps the
// service compatible with an existing WordPress database.
//
// # Migrations
//
// Migrate creates the tables and runs data migrations contributed by features,
// recording each applied version so reruns are no-ops. Each migration runs in its
// own transaction.
package usermeta
