// Package main provides localization for the adposter CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Compose classified ad imagery: a 3x3 collage and branded social posts": "クラシファイド広告画像を合成: 3x3コラージュとブランド投稿画像",

		// Commands
		"Compose the collage and all post variants for one ad": "1件の広告のコラージュと全投稿画像を合成",
		"Compose a 3x3 photo collage":                          "3x3の写真コラージュを合成",
		"Compose the three branded social post variants":      "3種類のブランド投稿画像を合成",

		// Output flags
		"Output JPEG file path":                 "出力JPEGファイルパス",
		"Output directory for the ad imagery":   "広告画像の出力ディレクトリ",
		"Output directory for the post variants": "投稿画像の出力ディレクトリ",
		"YAML configuration file":               "YAML設定ファイル",

		// Composition flags
		"Square canvas side in pixels":               "正方形キャンバスの一辺（ピクセル）",
		"JPEG quality (1-100)":                       "JPEG品質（1-100）",
		"Draw a contact QR badge on the wide banner": "ワイドバナーに連絡先QRバッジを描画",

		// Text flags
		"Vehicle model":                          "車両モデル",
		"Manufacture year":                       "製造年",
		"Asking price":                           "希望価格",
		"Price type (e.g. Negotiable)":           "価格タイプ（例: 交渉可）",
		"Vehicle condition":                      "車両の状態",
		"Seller location":                        "出品者の所在地",
		"Contact phone number":                   "連絡先電話番号",
		"Site name shown on the branding badge":  "ブランドバッジに表示するサイト名",

		// Debug flags
		"Enable debug output of intermediate layers": "中間レイヤーのデバッグ出力を有効化",
		"Directory for debug output":                 "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Output saved to %s":                      "出力を %s に保存しました",
		"At least one photo argument is required": "少なくとも1枚の写真引数が必要です",
	})
}
