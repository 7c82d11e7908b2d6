package dto

type UpdateSiteSettingRequest struct {
	Value string `json:"value"`
}
