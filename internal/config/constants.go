// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "Learn2Code"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"

	// エネルギーは30分に1回復。無料プランは上限5、
	// 有料プランは実質無制限 (大きな定数で表現する)。
	DefaultEnergyRegenMinutes = 30
	DefaultMaxEnergyFree      = 5
	DefaultMaxEnergyPro       = 999
	DefaultStreakBonusEvery   = 3

	// 採点結果ごとの獲得XP
	DefaultXPCorrect   = 10
	DefaultXPPartial   = 5
	DefaultXPIncorrect = 2
)
