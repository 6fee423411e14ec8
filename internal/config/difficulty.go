package config

// SpeedAt returns the fall speed of an obstacle spawned at the given display
// score: base_speed plus one pixel per frame for every speed_score_step
// points. There is no upper bound.
func (o ObstacleConfig) SpeedAt(displayScore int) int {
	step := o.SpeedScoreStep
	if step <= 0 {
		step = 1
	}
	if displayScore < 0 {
		displayScore = 0
	}
	return o.BaseSpeed + displayScore/step
}

// DisplayScore converts survived frames into the score shown to the player.
func (s ScoringConfig) DisplayScore(frames int) int {
	if s.FramesPerPoint <= 0 {
		return frames
	}
	return frames / s.FramesPerPoint
}
