package history

const (
	queryInsert = `
		INSERT INTO redesign_history (
			user_id, original_image_url, redesigned_image_url, style, customizations, is_favorite
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, original_image_url, redesigned_image_url, style, customizations, is_favorite, created_at, updated_at
	`

	queryList = `
		SELECT id, user_id, original_image_url, redesigned_image_url, style, customizations, is_favorite, created_at, updated_at
		FROM redesign_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryListFavorites = `
		SELECT id, user_id, original_image_url, redesigned_image_url, style, customizations, is_favorite, created_at, updated_at
		FROM redesign_history
		WHERE user_id = $1 AND is_favorite = true
		ORDER BY created_at DESC
	`

	queryUpdateFavorite = `
		UPDATE redesign_history
		SET is_favorite = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, original_image_url, redesigned_image_url, style, customizations, is_favorite, created_at, updated_at
	`

	queryDelete = `
		DELETE FROM redesign_history
		WHERE id = $1 AND user_id = $2
	`
)
