package dto

// FavoriteRequest: payload for adding or removing a favorite wine
type FavoriteRequest struct {
	WineID string `json:"wine_id" binding:"required"`
}

// RateWineRequest: payload for rating a wine (1..5)
type RateWineRequest struct {
	WineID string `json:"wine_id" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}
