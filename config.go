package main

import "sync"

type Config struct {
	Addr           string          `json:"addr"`
	TickIntervalMs int             `json:"tick_interval_ms"`
	Heuristics     HeuristicConfig `json:"heuristics"`
}

// HeuristicConfig holds the point table for the single-ply evaluator.
// A direction counts contiguous same-colored stones next to the candidate
// cell; "open" means neither scan hit the board edge or an opposing stone.
type HeuristicConfig struct {
	Four        int `json:"four"`
	OpenThree   int `json:"open_three"`
	ClosedThree int `json:"closed_three"`
	OpenTwo     int `json:"open_two"`
	ClosedTwo   int `json:"closed_two"`
	OpenOne     int `json:"open_one"`
	ClosedOne   int `json:"closed_one"`

	AttackWeight  int `json:"attack_weight"`
	DefenseWeight int `json:"defense_weight"`
	CenterWeight  int `json:"center_weight"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		TickIntervalMs: 50,

		Heuristics: HeuristicConfig{
			Four:        10000,
			OpenThree:   1000,
			ClosedThree: 100,
			OpenTwo:     100,
			ClosedTwo:   10,
			OpenOne:     10,
			ClosedOne:   1,

			// Offense outweighs defense by a fixed 10:8 ratio.
			AttackWeight:  10,
			DefenseWeight: 8,
			CenterWeight:  2,
		},
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
