package model

// ブラジルの州コード（2文字）
type StateCode string

const (
	StateAC StateCode = "AC"
	StateAL StateCode = "AL"
	StateAP StateCode = "AP"
	StateAM StateCode = "AM"
	StateBA StateCode = "BA"
	StateCE StateCode = "CE"
	StateDF StateCode = "DF"
	StateES StateCode = "ES"
	StateGO StateCode = "GO"
	StateMA StateCode = "MA"
	StateMT StateCode = "MT"
	StateMS StateCode = "MS"
	StateMG StateCode = "MG"
	StatePA StateCode = "PA"
	StatePB StateCode = "PB"
	StatePR StateCode = "PR"
	StatePE StateCode = "PE"
	StatePI StateCode = "PI"
	StateRJ StateCode = "RJ"
	StateRN StateCode = "RN"
	StateRS StateCode = "RS"
	StateRO StateCode = "RO"
	StateRR StateCode = "RR"
	StateSC StateCode = "SC"
	StateSP StateCode = "SP"
	StateSE StateCode = "SE"
	StateTO StateCode = "TO"
)

var stateNames = map[StateCode]string{
	StateAC: "Acre",
	StateAL: "Alagoas",
	StateAP: "Amapá",
	StateAM: "Amazonas",
	StateBA: "Bahia",
	StateCE: "Ceará",
	StateDF: "Distrito Federal",
	StateES: "Espírito Santo",
	StateGO: "Goiás",
	StateMA: "Maranhão",
	StateMT: "Mato Grosso",
	StateMS: "Mato Grosso do Sul",
	StateMG: "Minas Gerais",
	StatePA: "Pará",
	StatePB: "Paraíba",
	StatePR: "Paraná",
	StatePE: "Pernambuco",
	StatePI: "Piauí",
	StateRJ: "Rio de Janeiro",
	StateRN: "Rio Grande do Norte",
	StateRS: "Rio Grande do Sul",
	StateRO: "Rondônia",
	StateRR: "Roraima",
	StateSC: "Santa Catarina",
	StateSP: "São Paulo",
	StateSE: "Sergipe",
	StateTO: "Tocantins",
}

// 定義済み27州のどれか
func (s StateCode) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// 州の正式名。未定義なら空文字。
func (s StateCode) Name() string {
	return stateNames[s]
}

// 全州コード（表示順）
func StateCodes() []StateCode {
	return []StateCode{
		StateAC, StateAL, StateAP, StateAM, StateBA, StateCE, StateDF, StateES, StateGO,
		StateMA, StateMT, StateMS, StateMG, StatePA, StatePB, StatePR, StatePE, StatePI,
		StateRJ, StateRN, StateRS, StateRO, StateRR, StateSC, StateSP, StateSE, StateTO,
	}
}
