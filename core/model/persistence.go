package model

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SaveWeights はModelWeightsをファイルに保存する
//
// パラメータ:
//   - weights: 保存する重み
//   - filename: 保存先のファイルパス
//
// 使用例:
//
//	weights, _ := reg.ExportWeights()
//	err := model.SaveWeights(weights, "ridge.gob")
func SaveWeights(weights *ModelWeights, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return SaveWeightsToWriter(weights, file)
}

// LoadWeights はファイルからModelWeightsを読み込む
//
// パラメータ:
//   - filename: 読み込み元のファイルパス
//
// 使用例:
//
//	weights, err := model.LoadWeights("ridge.gob")
//	err = reg.ImportWeights(weights)
func LoadWeights(filename string) (*ModelWeights, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadWeightsFromReader(file)
}

// SaveWeightsToWriter はModelWeightsをio.Writerに保存する
func SaveWeightsToWriter(weights *ModelWeights, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(weights); err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	return nil
}

// LoadWeightsFromReader はio.ReaderからModelWeightsを読み込む
func LoadWeightsFromReader(r io.Reader) (*ModelWeights, error) {
	var weights ModelWeights
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(&weights); err != nil {
		return nil, fmt.Errorf("failed to decode weights: %w", err)
	}
	return &weights, nil
}
