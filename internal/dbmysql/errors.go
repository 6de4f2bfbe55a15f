package dbmysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is a MySQL unique-constraint
// violation. Repositories map it onto the Conflict side of the error
// taxonomy instead of treating it as an internal failure.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
