package logger

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for engine log messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Collage composer
		"Composing %dx%d collage from %d photos": "%dx%d のコラージュを %d 枚の写真から合成中",
		"Photo %d could not be decoded, using placeholder tile: %s": "写真 %d をデコードできません。プレースホルダーで代替します: %s",
		"Collage saved to %s": "コラージュを %s に保存しました",

		// Post composer
		"Hero photo could not be decoded, using solid placeholder: %s": "メイン写真をデコードできません。単色プレースホルダーで代替します: %s",
		"Composing %s (%dx%d)":      "%s を合成中 (%dx%d)",
		"Post images saved to %s":   "投稿画像を %s に保存しました",
		"QR badge skipped: %s":      "QRバッジをスキップしました: %s",

		// Orchestrator
		"Generating ad imagery for %d photos": "%d 枚の写真から広告画像を生成中",
		"Done: collage and %d post variants":  "完了: コラージュと %d 種類の投稿画像",
	})
}
