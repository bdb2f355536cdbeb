package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// FetchRecommendedCourseIDs asks the external recommendation service for
// course suggestions for a user. The collaborator is non-essential: any
// failure (unconfigured, network error, bad status, bad payload) yields an
// empty list, never an error to the caller.
func FetchRecommendedCourseIDs(userID uint) []uint {
	if config.AppConfig.RecoApiURL == "" {
		return []uint{}
	}

	client := resty.New().SetTimeout(5 * time.Second)
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.RecoApiKey).
		Get(fmt.Sprintf("%s/recommendations?user_id=%d", config.AppConfig.RecoApiURL, userID))
	if err != nil {
		log.Printf("Failed to fetch recommendations: %v", err)
		return []uint{}
	}
	if resp.StatusCode() != 200 {
		log.Printf("Recommendation service returned status %d: %s", resp.StatusCode(), resp.String())
		return []uint{}
	}

	var recoResp struct {
		CourseIDs []uint `json:"course_ids"`
	}
	if err := json.Unmarshal(resp.Body(), &recoResp); err != nil {
		log.Printf("Failed to parse recommendation response: %v", err)
		return []uint{}
	}

	return recoResp.CourseIDs
}
