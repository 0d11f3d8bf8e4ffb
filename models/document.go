package models

import "time"

// DocumentRecord is one row of the document catalog. Optional columns are
// zero-valued when the source did not provide them.
type DocumentRecord struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	ParentPath     string    `db:"parent_path"`
	Ext            string    `db:"ext"`
	Size           int64     `db:"size"`
	CreateTime     time.Time `db:"create_time"`
	ModifyTime     time.Time `db:"modify_time"`
	AccessTime     time.Time `db:"access_time"`
	IsDeleted      bool      `db:"is_deleted"`
	DupKey         string    `db:"dup_key"`
	Classification string    `db:"classification"`
	PermissionSet  string    `db:"permission_set"`
}
