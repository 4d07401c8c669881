package metrics

// SupportedIDs はこのパッケージが計算実装を持つカタログIDの一覧を返す。
// knowledgeパッケージの分類・回帰の全エントリをカバーする。
func SupportedIDs() []string {
	return []string{
		"accuracy",
		"precision",
		"recall",
		"f1",
		"roc_auc",
		"confusion_matrix",
		"mae",
		"mse",
		"rmse",
		"r2",
		"mape",
	}
}
