package domain

import "fmt"

// Video is one entry of the fake video library.
type Video struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// DefaultVideos returns the videos offered on the site.
func DefaultVideos() []Video {
	return []Video{
		{ID: 1, Title: "Sports Car Review - Performance Analysis"},
		{ID: 2, Title: "Racing Championship - Best Moments"},
		{ID: 3, Title: "Latest Automotive Technology Features"},
	}
}

// FindVideo looks a video up by id.
func FindVideo(videos []Video, id int) (Video, error) {
	for _, v := range videos {
		if v.ID == id {
			return v, nil
		}
	}
	return Video{}, NewNotFoundError(fmt.Sprintf("video not found: %d", id))
}

// MaxProgress is the progress value at which playback ends.
const MaxProgress = 100

// PlayerState is the fake player shown in the modal.
type PlayerState struct {
	ModalOpen bool   `json:"modal_open"`
	VideoID   int    `json:"video_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Playing   bool   `json:"playing"`
	Progress  int    `json:"progress"` // percent
}

// OpenVideo shows the modal for v with a freshly reset player.
func OpenVideo(v Video) PlayerState {
	return PlayerState{ModalOpen: true, VideoID: v.ID, Title: v.Title}
}

// TickPlayer advances playback by step percent.
// Reaching MaxProgress stops playback and rewinds; the returned bool is false once ticking must stop.
func TickPlayer(p PlayerState, step int) (PlayerState, bool) {
	if !p.Playing {
		return p, false
	}
	p.Progress += step
	if p.Progress >= MaxProgress {
		p.Playing = false
		p.Progress = 0
		return p, false
	}
	return p, true
}

// CloseVideo hides the modal and resets the player.
func CloseVideo() PlayerState {
	return PlayerState{}
}
