package usecase

import (
	"encoding/json"
	"errors"

	"github.com/Karthik-Kakumanu/BrahminFoods-Website/internal/domain/model"
)

// itemsカラムが商品配列として読めなかった（二重デコードしても直らない）
var ErrMalformedItems = errors.New("malformed items payload")

// ネストを追いかけるのはここまで。正常データは1回、過去の二重エンコード行で2回。
const maxItemsUnwrap = 2

// EncodeItems は注文のitemsを保存用の1層JSONテキストにする。
// フロントから文字列で届いた場合も一度パースして配列であることを確認してから
// エンコードし直す（未検証のテキストや多重ネストをそのまま保存しない）。
func EncodeItems(v any) (string, error) {
	switch items := v.(type) {
	case nil:
		return "", ErrMalformedItems
	case string:
		var parsed []model.LineItem
		if err := json.Unmarshal([]byte(items), &parsed); err != nil {
			return "", ErrMalformedItems
		}
		return marshalItems(parsed)
	case []model.LineItem:
		return marshalItems(items)
	default:
		//Bind済みのJSON値（[]anyなど）はJSON経由で型を揃える
		raw, err := json.Marshal(v)
		if err != nil {
			return "", ErrMalformedItems
		}
		var parsed []model.LineItem
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return "", ErrMalformedItems
		}
		return marshalItems(parsed)
	}
}

// DecodeItems は保存されたitemsテキストを商品配列に戻す。
// 1回目のパース結果がまだ文字列なら過去の二重エンコード行とみなしてもう一度だけ
// パースする。それでも配列にならなければ空スライスとErrMalformedItemsを返す
// （呼び出し側はwarnして続行する。throwしない）。
func DecodeItems(raw string) ([]model.LineItem, error) {
	data := []byte(raw)

	for i := 0; i < maxItemsUnwrap; i++ {
		var items []model.LineItem
		if err := json.Unmarshal(data, &items); err == nil {
			return normalizeItems(items), nil
		}

		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			break
		}
		data = []byte(inner)
	}

	return []model.LineItem{}, ErrMalformedItems
}

func marshalItems(items []model.LineItem) (string, error) {
	if items == nil {
		items = []model.LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", ErrMalformedItems
	}
	return string(b), nil
}

// weightの無い商品は表示用に"N/A"で埋める
func normalizeItems(items []model.LineItem) []model.LineItem {
	out := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		if it.Weight == "" {
			it.Weight = "N/A"
		}
		out = append(out, it)
	}
	return out
}
