package store

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// isDuplicate reports whether err is the store's unique-constraint
// violation. MySQL surfaces errno 1062; sqlite (the test driver) reports a
// UNIQUE constraint message.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isFKViolation reports whether err is a foreign-key failure, i.e. a
// message referencing a username that does not exist. MySQL errno 1452;
// sqlite reports a FOREIGN KEY constraint message.
func isFKViolation(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1452
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
