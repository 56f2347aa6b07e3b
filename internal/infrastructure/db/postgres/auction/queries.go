package auction

const auctionColumns = `id, uuid, product_id, title, description, starting_price, current_bid, status, starts_at, ends_at, created_at, updated_at`

const (
	SelectAuctions = `
		SELECT ` + auctionColumns + `
		FROM auctions
	`
	SelectAuctionByUUID = `
		SELECT ` + auctionColumns + `
		FROM auctions
		WHERE uuid = $1
	`
	InsertAuction = `
		INSERT INTO auctions (product_id, title, description, starting_price, current_bid, status, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $4, $5, $6, $7)
		RETURNING ` + auctionColumns + `
	`
	UpdateAuctionByUUID = `
		UPDATE auctions
		SET title = $1,
		    description = $2,
		    starting_price = $3,
		    status = $4,
		    starts_at = $5,
		    ends_at = $6,
		    updated_at = now()
		WHERE uuid = $7
		RETURNING ` + auctionColumns + `
	`
	DeleteAuctionByUUID = `
		DELETE FROM auctions
		WHERE uuid = $1
		RETURNING ` + auctionColumns + `
	`
)
