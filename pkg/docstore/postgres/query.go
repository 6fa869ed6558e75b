package postgres

const (
	listQuery = `SELECT id, fields FROM documents WHERE collection = $1 ORDER BY seq`

	getQuery = `SELECT fields FROM documents WHERE collection = $1 AND id = $2`

	queryByField = `SELECT id, fields FROM documents
		WHERE collection = $1 AND fields -> $2::text = $3::jsonb
		ORDER BY seq`

	insertQuery = `INSERT INTO documents (collection, id, fields) VALUES ($1, $2, $3::jsonb)`

	mergeQuery = `UPDATE documents SET fields = fields || $3::jsonb WHERE collection = $1 AND id = $2`

	deleteQuery = `DELETE FROM documents WHERE collection = $1 AND id = $2`
)
