package store

// Item queries
const (
	queryInsertItem = `
		INSERT INTO items (store_id, section_id, name, ord)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at, updated_at`

	querySetItemChecked = `
		UPDATE items SET checked = ?, updated_at = now()
		WHERE id = ?`
)

// Store queries
const (
	queryInsertShop = `
		INSERT INTO stores (name)
		VALUES (?)
		RETURNING id, created_at, updated_at`

	queryRenameShop = `
		UPDATE stores SET name = ?, updated_at = now()
		WHERE id = ?`

	queryDeleteShop = `DELETE FROM stores WHERE id = ?`
)

// Section queries
const (
	queryInsertSection = `
		INSERT INTO sections (store_id, name, ord)
		VALUES (?, ?, ?)
		RETURNING id, created_at, updated_at`

	queryRenameSection = `
		UPDATE sections SET name = ?, updated_at = now()
		WHERE id = ?`

	querySetSectionOrd = `
		UPDATE sections SET ord = ?, updated_at = now()
		WHERE id = ? AND store_id = ?`

	queryDeleteSection = `DELETE FROM sections WHERE id = ?`

	queryDeleteSectionsByShop = `DELETE FROM sections WHERE store_id = ?`

	queryNextSectionOrd = `SELECT COALESCE(MAX(ord) + 1, 0) FROM sections WHERE store_id = ?`
)
