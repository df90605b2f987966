package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dawbridge/internal/gateway"
)

// subquery names one independent piece of GetSongInfo's fan-out, so a
// failure can be reported against the field it was fetching.
type subquery struct {
	field string
	run   func(ctx context.Context) error
}

// GetSongInfo fans out every song-level field as its own request, each
// bounded by its own timeout, and degrades gracefully: a subset of fields
// failing does not fail the whole call, it surfaces as partial_failures
// alongside whatever did succeed (spec §4.6, §8 scenario coverage for
// degraded connectivity). When includeTracks is set, the tracks are
// fetched concurrently with each other once the song-scalar fan-out has
// finished, one per index below the fetched track count (none if the
// track_count subquery failed); when includeDevices is also set, each
// track's devices are fetched as part of that track's fetch (spec §6.2
// get_song_info).
func GetSongInfo(ctx context.Context, gw *gateway.Gateway, perFieldTimeout time.Duration, includeTracks, includeDevices bool) Result {
	var (
		mu       sync.Mutex
		song     gateway.Song
		failures []string
		firstErr error
	)

	record := func(field string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failures = append(failures, field+": "+err.Error())
		if firstErr == nil {
			firstErr = err
		}
	}

	subqueries := []subquery{
		{"name", func(ctx context.Context) error {
			v, err := gw.GetName(ctx)
			if err == nil {
				mu.Lock()
				song.Name = v
				mu.Unlock()
			}
			return err
		}},
		{"tempo", func(ctx context.Context) error {
			v, err := gw.GetTempo(ctx)
			if err == nil {
				mu.Lock()
				song.Tempo = v
				mu.Unlock()
			}
			return err
		}},
		{"signature_numerator", func(ctx context.Context) error {
			v, err := gw.GetSignatureNumerator(ctx)
			if err == nil {
				mu.Lock()
				song.SignatureNumerator = v
				mu.Unlock()
			}
			return err
		}},
		{"signature_denominator", func(ctx context.Context) error {
			v, err := gw.GetSignatureDenominator(ctx)
			if err == nil {
				mu.Lock()
				song.SignatureDenominator = v
				mu.Unlock()
			}
			return err
		}},
		{"is_playing", func(ctx context.Context) error {
			v, err := gw.GetIsPlaying(ctx)
			if err == nil {
				mu.Lock()
				song.IsPlaying = v
				mu.Unlock()
			}
			return err
		}},
		{"current_time", func(ctx context.Context) error {
			v, err := gw.GetCurrentTime(ctx)
			if err == nil {
				mu.Lock()
				song.CurrentTime = v
				mu.Unlock()
			}
			return err
		}},
		{"loop_enabled", func(ctx context.Context) error {
			v, err := gw.GetLoopEnabled(ctx)
			if err == nil {
				mu.Lock()
				song.LoopEnabled = v
				mu.Unlock()
			}
			return err
		}},
		{"loop_start", func(ctx context.Context) error {
			v, err := gw.GetLoopStart(ctx)
			if err == nil {
				mu.Lock()
				song.LoopStart = v
				mu.Unlock()
			}
			return err
		}},
		{"loop_length", func(ctx context.Context) error {
			v, err := gw.GetLoopLength(ctx)
			if err == nil {
				mu.Lock()
				song.LoopLength = v
				mu.Unlock()
			}
			return err
		}},
		{"metronome", func(ctx context.Context) error {
			v, err := gw.GetMetronome(ctx)
			if err == nil {
				mu.Lock()
				song.Metronome = v
				mu.Unlock()
			}
			return err
		}},
		{"overdub", func(ctx context.Context) error {
			v, err := gw.GetOverdub(ctx)
			if err == nil {
				mu.Lock()
				song.Overdub = v
				mu.Unlock()
			}
			return err
		}},
		{"swing", func(ctx context.Context) error {
			v, err := gw.GetSwing(ctx)
			if err == nil {
				mu.Lock()
				song.Swing = v
				mu.Unlock()
			}
			return err
		}},
		{"record_mode", func(ctx context.Context) error {
			v, err := gw.GetRecordMode(ctx)
			if err == nil {
				mu.Lock()
				song.RecordMode = v
				mu.Unlock()
			}
			return err
		}},
		{"session_record", func(ctx context.Context) error {
			v, err := gw.GetSessionRecord(ctx)
			if err == nil {
				mu.Lock()
				song.SessionRecord = v
				mu.Unlock()
			}
			return err
		}},
		{"punch_in", func(ctx context.Context) error {
			v, err := gw.GetPunchIn(ctx)
			if err == nil {
				mu.Lock()
				song.PunchIn = v
				mu.Unlock()
			}
			return err
		}},
		{"punch_out", func(ctx context.Context) error {
			v, err := gw.GetPunchOut(ctx)
			if err == nil {
				mu.Lock()
				song.PunchOut = v
				mu.Unlock()
			}
			return err
		}},
		{"master_volume", func(ctx context.Context) error {
			v, err := gw.GetMasterVolume(ctx)
			if err == nil {
				mu.Lock()
				song.MasterVolume = v
				mu.Unlock()
			}
			return err
		}},
		{"master_pan", func(ctx context.Context) error {
			v, err := gw.GetMasterPan(ctx)
			if err == nil {
				mu.Lock()
				song.MasterPan = v
				mu.Unlock()
			}
			return err
		}},
		{"track_count", func(ctx context.Context) error {
			v, err := gw.GetTrackCount(ctx)
			if err == nil {
				mu.Lock()
				song.TrackCount = v
				mu.Unlock()
			}
			return err
		}},
		{"scene_count", func(ctx context.Context) error {
			v, err := gw.GetSceneCount(ctx)
			if err == nil {
				mu.Lock()
				song.SceneCount = v
				mu.Unlock()
			}
			return err
		}},
		{"return_track_count", func(ctx context.Context) error {
			v, err := gw.GetReturnTrackCount(ctx)
			if err == nil {
				mu.Lock()
				song.ReturnTrackCount = v
				mu.Unlock()
			}
			return err
		}},
		{"application_version", func(ctx context.Context) error {
			v, err := gw.GetApplicationVersion(ctx)
			if err == nil {
				mu.Lock()
				song.ApplicationVersion = v
				mu.Unlock()
			}
			return err
		}},
	}

	var wg sync.WaitGroup
	wg.Add(len(subqueries))
	for _, sq := range subqueries {
		go func(sq subquery) {
			defer wg.Done()
			subCtx, cancel := context.WithTimeout(ctx, perFieldTimeout)
			defer cancel()
			if err := sq.run(subCtx); err != nil {
				record(sq.field, err)
			}
		}(sq)
	}
	wg.Wait()

	if len(failures) == len(subqueries) {
		return errResult(firstErr)
	}

	data := map[string]any{"song": song}

	if includeTracks {
		trackCount := song.TrackCount
		tracks := make([]gateway.Track, trackCount)
		var twg sync.WaitGroup
		twg.Add(trackCount)
		for i := 0; i < trackCount; i++ {
			go func(i int) {
				defer twg.Done()
				subCtx, cancel := context.WithTimeout(ctx, perFieldTimeout)
				defer cancel()
				var tr gateway.Track
				var err error
				if includeDevices {
					tr, err = gw.GetTrack(subCtx, i)
				} else {
					tr, err = gw.GetTrackWithoutDevices(subCtx, i)
				}
				if err != nil {
					record(fmt.Sprintf("track[%d]", i), err)
					return
				}
				tracks[i] = tr
			}(i)
		}
		twg.Wait()
		data["tracks"] = tracks
	}

	if len(failures) > 0 {
		data["partial_failures"] = failures
	}
	return ok("fetched song info", data)
}

// SetTempo validates and applies a new song tempo.
func SetTempo(gw *gateway.Gateway, bpm float32) Result {
	if err := gw.SetTempo(bpm); err != nil {
		return errResult(err)
	}
	return ok("tempo set", map[string]any{"tempo": bpm})
}

// SetTimeSignature validates and applies a new time signature.
func SetTimeSignature(gw *gateway.Gateway, numerator, denominator int) Result {
	if err := gw.SetTimeSignature(numerator, denominator); err != nil {
		return errResult(err)
	}
	return ok("time signature set", map[string]any{"numerator": numerator, "denominator": denominator})
}

// SetMasterVolume validates and applies a new master volume.
func SetMasterVolume(gw *gateway.Gateway, volume float32) Result {
	if err := gw.SetMasterVolume(volume); err != nil {
		return errResult(err)
	}
	return ok("master volume set", map[string]any{"volume": volume})
}

// SetMasterPan validates and applies a new master pan.
func SetMasterPan(gw *gateway.Gateway, pan float32) Result {
	if err := gw.SetMasterPan(pan); err != nil {
		return errResult(err)
	}
	return ok("master pan set", map[string]any{"pan": pan})
}

// SetSwing validates and applies a new swing amount.
func SetSwing(gw *gateway.Gateway, amount float32) Result {
	if err := gw.SetSwing(amount); err != nil {
		return errResult(err)
	}
	return ok("swing set", map[string]any{"swing": amount})
}
