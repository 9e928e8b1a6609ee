package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/letsssgooo/quizcraft/internal/quiz"
)

// Формат test.json: массив объектов-вопросов. Правильность кодируется
// числом 1 или 0 для совместимости с существующими тестами, поэтому
// булев флаг на диск не пишется.
//
// Ключи объекта "answers" значимы по порядку: answers_images выравнен
// с ними по позиции. Стандартный map порядок не сохраняет, так что
// объект разбирается и пишется вручную, токен за токеном.

// answerDoc — пара "текст ответа : флаг" в порядке документа.
type answerDoc struct {
	Text    string
	Correct int
}

// questionDoc — вопрос в дисковом формате.
type questionDoc struct {
	Question      string
	QuestionImage string
	Answers       []answerDoc
	AnswersImages []string
}

// UnmarshalJSON разбирает вопрос, сохраняя порядок ключей "answers".
func (d *questionDoc) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	var hasQuestion, hasQuestionImage, hasAnswers, hasAnswersImages bool

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", keyToken)
		}

		switch key {
		case "question":
			if err := dec.Decode(&d.Question); err != nil {
				return err
			}
			hasQuestion = true
		case "question_image":
			if err := dec.Decode(&d.QuestionImage); err != nil {
				return err
			}
			hasQuestionImage = true
		case "answers":
			answers, err := decodeAnswers(dec)
			if err != nil {
				return err
			}
			d.Answers = answers
			hasAnswers = true
		case "answers_images":
			if err := dec.Decode(&d.AnswersImages); err != nil {
				return err
			}
			hasAnswersImages = true
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	if !hasQuestion || !hasQuestionImage || !hasAnswers || !hasAnswersImages {
		return fmt.Errorf("question object misses a required field")
	}

	return nil
}

// decodeAnswers читает объект "answers" в порядке появления ключей.
func decodeAnswers(dec *json.Decoder) ([]answerDoc, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	answers := []answerDoc{}
	seen := map[string]struct{}{}

	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil, err
		}

		text, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in answers", keyToken)
		}

		if _, dup := seen[text]; dup {
			return nil, fmt.Errorf("duplicate answer %q", text)
		}
		seen[text] = struct{}{}

		valueToken, err := dec.Token()
		if err != nil {
			return nil, err
		}

		number, ok := valueToken.(json.Number)
		if !ok {
			return nil, fmt.Errorf("answer %q flag must be 0 or 1", text)
		}

		flag, err := number.Int64()
		if err != nil || (flag != 0 && flag != 1) {
			return nil, fmt.Errorf("answer %q flag must be 0 or 1", text)
		}

		answers = append(answers, answerDoc{Text: text, Correct: int(flag)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return answers, nil
}

// MarshalJSON пишет вопрос, сохраняя порядок ответов как порядок
// ключей объекта "answers".
func (d questionDoc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if err := writeField(&buf, "question", d.Question); err != nil {
		return nil, err
	}
	buf.WriteByte(',')

	if err := writeField(&buf, "question_image", d.QuestionImage); err != nil {
		return nil, err
	}
	buf.WriteByte(',')

	buf.WriteString(`"answers":{`)
	for i, answer := range d.Answers {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(answer.Text)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", answer.Correct)
	}
	buf.WriteString("},")

	images := d.AnswersImages
	if images == nil {
		images = []string{}
	}

	if err := writeField(&buf, "answers_images", images); err != nil {
		return nil, err
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	fmt.Fprintf(buf, "%q:", key)
	buf.Write(data)

	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	token, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := token.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, token)
	}

	return nil
}

// toTest превращает дисковый документ в тест.
// Идентификаторы вопросов и ответов выдаются заново при каждой загрузке.
func toTest(docs []questionDoc) (*quiz.Test, error) {
	test := quiz.NewTest()

	for i, doc := range docs {
		if len(doc.AnswersImages) != len(doc.Answers) {
			return nil, fmt.Errorf(
				"%w, question %d has %d answers but %d answer images",
				ErrFormat, i, len(doc.Answers), len(doc.AnswersImages),
			)
		}

		question := quiz.Question{
			ID:      uuid.NewString(),
			Text:    doc.Question,
			Image:   doc.QuestionImage,
			Answers: make([]quiz.Answer, len(doc.Answers)),
		}

		for j, answer := range doc.Answers {
			question.Answers[j] = quiz.Answer{
				ID:      uuid.NewString(),
				Text:    answer.Text,
				Correct: answer.Correct == 1,
				Image:   doc.AnswersImages[j],
			}
		}

		test.Questions = append(test.Questions, question)
	}

	return test, nil
}

// toDocs превращает тест в дисковый документ.
func toDocs(test *quiz.Test) []questionDoc {
	docs := make([]questionDoc, len(test.Questions))

	for i, question := range test.Questions {
		doc := questionDoc{
			Question:      question.Text,
			QuestionImage: question.Image,
			Answers:       make([]answerDoc, len(question.Answers)),
			AnswersImages: make([]string, len(question.Answers)),
		}

		for j, answer := range question.Answers {
			flag := 0
			if answer.Correct {
				flag = 1
			}

			doc.Answers[j] = answerDoc{Text: answer.Text, Correct: flag}
			doc.AnswersImages[j] = answer.Image
		}

		docs[i] = doc
	}

	return docs
}
