package main

type GameSettings struct {
	BoardSize int `json:"board_size"`
	WinLength int `json:"win_length"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize: 15,
		WinLength: 5,
	}
}
