package services

import (
	types "github.com/yungbote/roadquiz-backend/internal/domain"
)

// GeneratedQuiz is the normalized quiz payload produced by the AI pipeline
// (or its static fallback).
type GeneratedQuiz struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// defaultQuizzes is the curated per-category quiz bank served whenever AI
// generation fails. Every category has exactly one entry.
var defaultQuizzes = map[string]GeneratedQuiz{
	types.CategorySignals: {
		Question: "빨간 신호등에서 우회전하려고 할 때, 다음 중 올바른 행동은?",
		Options: []string{
			"보행자가 없으면 바로 우회전한다",
			"보행자가 있으면 보행자가 건너기를 기다린 후 우회전한다",
			"신호가 바뀔 때까지 기다린다",
			"경찰관의 지시를 받는다",
		},
		Correct:     1,
		Explanation: "빨간 신호에서 우회전할 때는 보행자가 있으면 보행자가 건너기를 기다린 후 우회전해야 합니다.",
	},
	types.CategoryIntersection: {
		Question: "신호등이 없는 교차로에서 좌회전하려고 할 때, 다음 중 우선순위가 높은 것은?",
		Options: []string{
			"직진하는 차량",
			"우회전하는 차량",
			"보행자",
			"자전거",
		},
		Correct:     2,
		Explanation: "교차로에서는 보행자가 가장 우선순위가 높습니다.",
	},
	types.CategoryParking: {
		Question: "다음 중 주차금지구역에 해당하지 않는 곳은?",
		Options: []string{
			"교차로 모퉁이 5m 이내",
			"횡단보도 10m 이내",
			"버스정류장 10m 이내",
			"주차장 출입구 3m 이내",
		},
		Correct:     3,
		Explanation: "주차장 출입구는 3m 이내가 아닌 5m 이내가 주차금지구역입니다.",
	},
	types.CategoryHighway: {
		Question: "고속도로에서 긴급상황으로 정차해야 할 때, 다음 중 올바른 행동은?",
		Options: []string{
			"가능한 한 도로 우측에 정차한다",
			"가능한 한 도로 좌측에 정차한다",
			"가능한 한 도로 중앙에 정차한다",
			"가능한 한 도로 밖으로 나간다",
		},
		Correct:     0,
		Explanation: "고속도로에서는 가능한 한 도로 우측에 정차해야 합니다.",
	},
	types.CategorySpecial: {
		Question: "어린이 보호구역에서 다음 중 올바른 운전 방법은?",
		Options: []string{
			"시속 30km 이하로 주행한다",
			"시속 50km 이하로 주행한다",
			"시속 60km 이하로 주행한다",
			"시속 80km 이하로 주행한다",
		},
		Correct:     0,
		Explanation: "어린이 보호구역에서는 시속 30km 이하로 주행해야 합니다.",
	},
}

// DefaultQuiz returns the curated quiz for the category, falling back to the
// signals category for unknown input.
func DefaultQuiz(category string) GeneratedQuiz {
	if q, ok := defaultQuizzes[category]; ok {
		return q
	}
	return defaultQuizzes[types.CategorySignals]
}
