// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// バリデーションメッセージに埋め込むフィールドの日本語名
var fieldNameTranslations = map[string]string{
	"name":        "名前",
	"email":       "メールアドレス",
	"password":    "パスワード",
	"token":       "トークン",
	"explanation": "説明文",
	"action":      "アクション",
	"result":      "採点結果",
	"title":       "タイトル",
	"code":        "コード",
	"language":    "言語",
	"difficulty":  "難易度",
	"units_json":  "ユニットJSON",
}

func init() {
	Validator = validator.New()

	// エラーメッセージにはJSONタグのフィールド名を使う
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// フィールド名を日本語化した上でメッセージを生成するヘルパー
	registerTranslation := func(tag string, msg string, withParam bool) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			var t string
			if withParam {
				t, _ = ut.T(tag, translatedFieldName, fe.Param())
			} else {
				t, _ = ut.T(tag, translatedFieldName)
			}
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。", false)
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。", false)
	registerTranslation("min", "{0}は{1}文字以上で入力してください。", true)
	registerTranslation("max", "{0}は{1}文字以下で入力してください。", true)
	registerTranslation("oneof", "{0}に指定できない値が設定されています。", false)
}
