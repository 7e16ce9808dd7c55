package widgets

// Per-page field descriptor registries. Each page registers the keys it
// collects; the overlay renders exactly the keys present in the submission.

func InputsFields() []Field {
	return []Field{
		{Key: "name", Label: "Nome"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Telefone"},
		{Key: "number", Label: "Número"},
		{Key: "search", Label: "Pesquisa"},
	}
}

func TextAreaFields() []Field {
	return []Field{
		{Key: "basicTextarea", Label: "Texto"},
		{Key: "descriptionTextarea", Label: "Descrição"},
		{Key: "commentTextarea", Label: "Comentário"},
		{Key: "messageTextarea", Label: "Mensagem"},
	}
}

func CheckBoxesFields() []Field {
	yesNo := func(v string) string {
		if v == "on" || v == "true" {
			return "Sim"
		}
		return "Não"
	}
	return []Field{
		{Key: "cypress", Label: "Cypress", Format: yesNo},
		{Key: "robotFramework", Label: "Robot Framework", Format: yesNo},
		{Key: "playwright", Label: "Playwright", Format: yesNo},
		{Key: "selenium", Label: "Selenium", Format: yesNo},
		{Key: "puppeteer", Label: "Puppeteer", Format: yesNo},
	}
}

func RadioButtonsFields() []Field {
	return []Field{
		{Key: "programmingLanguage", Label: "Linguagem"},
	}
}

func SelectFields() []Field {
	return []Field{
		{Key: "framework", Label: "Framework"},
		{Key: "languages", Label: "Linguagens"},
	}
}

func TagsFields() []Field {
	return []Field{
		{Key: "tags", Label: "Tags"},
	}
}

func DatePickerFields() []Field {
	return []Field{
		{Key: "date", Label: "Data"},
	}
}

func UploadFields() []Field {
	return []Field{
		{Key: "document", Label: "Arquivo"},
		{Key: "image", Label: "Imagem"},
	}
}

func CEPFields() []Field {
	return []Field{
		{Key: "cep", Label: "CEP"},
		{Key: "logradouro", Label: "Logradouro"},
		{Key: "localidade", Label: "Cidade"},
		{Key: "uf", Label: "Estado"},
	}
}
